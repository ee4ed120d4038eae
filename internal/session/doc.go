// Package session runs the line-oriented read, dispatch, print loop of a
// contactbook session. It recognises the exit words and applies the
// configured blank-line policy; everything else goes to a domain.CommandHandler.
package session
