// Loglocate is a tool to geolocate clients of a web server.
//
// Idea is simple: you have an access log where each line starts with
// a client address like 1.2.3.4. And you want to know where these
// clients come from: city, country, which organization owns this
// network. Loglocate collects unique addresses, resolves them one by
// one and writes a CSV table.
//
// Tool itself is organized into 2 logical parts:
//
// Loclib
//
// loclib is a main package of the application which contains log
// scanning, resolving and output logic. It works with any Provider.
//
// Providers
//
// This package has a set of provider implementations: ip-api.com
// (default), ipinfo.io and offline MaxMind GeoLite2 databases.
//
// A main package itself is an example of how to wire both loclib and
// providers into CLI.
package main
