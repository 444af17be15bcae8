// Package scaffold generates a minimal C++ project: a directory holding
// main.cpp, a Makefile and optional input/output files, optionally under git.
// It powers the root cppinit command and reports every step through a
// Reporter as it goes. Step failures never abort the run.
package scaffold
