// This package provides a set of structs and functions which are used
// to geolocate client addresses found in web server access logs.
//
// loclib is a core of the loglocate project. The rest of the
// application shows how to use this library: how to configure
// providers, how to log diagnostics, how to run it from CLI.
//
// Run is a main entrypoint. It scans a log file, collects a set of
// unique client addresses, resolves each of them with a given Provider
// and writes a CSV table with results. Lookup failures never break a
// run: such addresses get Unknown placeholders instead.
package loclib
