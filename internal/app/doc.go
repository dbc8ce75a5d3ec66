// Package app contains the core application logic. It defines the App
// struct, its configuration, and the repair lifecycle: load the plan, order
// its steps, run them one by one and report what was fixed. It knows nothing
// about the command line that produced its Config.
package app
