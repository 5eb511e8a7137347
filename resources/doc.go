// Package resources contains functions to prepare paths for TestDMG resources,
// such as the window geometry file and the debugger history.
//
// The JoinPath() function returns the correct path to the resource
// directory/file specified in the arguments. It handles the creation of
// directories as required but does not otherwise touch or create files.
//
// For builds with the "release" build tag, the path returned by JoinPath() is
// rooted in the user's configuration directory. On modern Linux systems the
// full path would be something like:
//
//	/home/user/.config/testdmg/
//
// For non-"release" builds, the path is rooted in the current working
// directory:
//
//	.testdmg
//
// # portable.txt
//
// An exception to the above rules is when an empty file named 'portable.txt' is
// in the same directory as the program binary. When the file exists the
// resources are saved in a directory named 'TestDMG_UserData' in the same
// directory as the program binary.
package resources
