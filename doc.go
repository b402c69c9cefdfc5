/*
© 2020–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

/*
Package parl handles inter-thread communication and controls parallelism

parl has sub-packages augmenting the Go standard library:

	perrors pio plog pruntime pstrings
	psyscall pterm ptime

parl has feature packages:

	goid — unique goroutine IDs
	pexec — command execution
	threadprof — profiling and counters for what threads are doing

parl features per-writer thread-safe logging with topic and per-package
output control:

Logging is to stderr except for the Out function.
parl logging uses comma separator for numbers.
One argument is output as string, two or more arguments is Printf.
The location matched against the  regular expression is
full package path, optional type receiver and the funtion name:
“github.com/haraldrudell/mypackage.(*MyType).MyFunc”

	Out(string, ...interface{}) — Standard output
	Log(string, ...interface{}) — Always outputs to stderr
	parl.D(string, ...interface{}) — Same as Log, intended for temporary use

	Info(string, ...interface{}) — Informational progress messages
	SetSilent(true) — removes Info output
	IsSilent() — deteremines if Info printing applies

	Debug(string, ...interface{}) — only prints for locations where SetDebug(true)
	SetDebug(true) — Control Debug() globally, code location for all prints, long stack traces
	SetRegexp(regExp string) (err error) — Regular expression controlling local Debug() printing
	IsThisDebug() — Determines if debug is active for the executing function

	Console(string, ...interface{}) — terminal interactivity output

parl.Recover() and parl.Recover2() thread recovery:

Threads can provide their errors via the perrors.ParlError thread-safe error store,
plain error channels or parl.ClosableChan[error].
parl.Recover and parl.Recover2 convert thread panic to error along with regular errors,
annotating, retrieving and storing those errors and invoking error handling functions for them.

	func thread(errs parl.ErrorSink1) { // receives non-fatal errors
	  var err error
	  defer parl.Recover2("", &err, errs.AddError)
	  if err = someFunc(); err != nil {
	    err = perrors.Errorf("someFunc: %w", err) // labels and attaches a stack
	    return
	…
	func myThreadSafeThread(wg *sync.WaitGroup, errs *perrors.ParlError) { // ParlError: thread-safe error store
	  defer wg.Done()
	  var err error
	  defer parl.Recover(parl.Annotation(), &err, errs.AddErrorProc)
	…

parl package features:

	atomic.Bool — Thread-safe boolean
	Closer — Deferrable, panic-free channel close
	ClosableChan — Initialization-free channel with observable deferrable panic-free close
	WaitGroup —Observable WaitGroup
	Sprintf — Supporting thousands separator

# Parl is about 15,000 lines of Go code with first line written on November 21, 2018

# On March 16th, 2022, parl was open-sourced under an ISC License

© 2018–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
*/
package parl
