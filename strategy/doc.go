// Package strategy provides the built-in execution strategies.
//
// A strategy turns a list of tasks (one per worker) into one partial result
// per task. The package includes:
//
//   - Sequential: Runs every task on the calling goroutine
//   - Threaded: One goroutine per task inside the current process
//   - Process: One child OS process per task (the current executable
//     re-invoked in worker mode)
//
// All strategies fail the whole call when any worker fails and cancel the
// remaining workers. None of them retries.
//
// Programs that use the process strategy must call RunWorkerMain at the top
// of main so that worker children serve their task instead of running the
// program:
//
//	func main() {
//	    strategy.RunWorkerMain()
//	    // normal program
//	}
package strategy
