/*
Package report presents the results of integrations.

A Summary flattens an (Outcome, error) pair into the fields a user wants to
see: the value, the absolute error estimate, the number of subdivisions and
evaluations, and a message, which is "OK" for successful integrations and
the error text otherwise. Summaries may be printed to a console, in color if
the console is a terminal, or rendered as an HTML table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'integrate'
func tracer() tracing.Trace {
	return tracing.Select("integrate")
}
