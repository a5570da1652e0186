// Package report holds the diagnostic sinks that the front end writes errors
// to.
package report

import (
	"fmt"
	"io"

	"github.com/tliron/commonlog"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code. Fully-features languages have a complex setup for reporting
// errors to user.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}

// LogReporter sends errors to a commonlog logger at error level.
type LogReporter struct {
	log    commonlog.Logger
	hadErr bool
}

func NewLogReporter(log commonlog.Logger) Reporter {
	return &LogReporter{log, false}
}

func (reporter *LogReporter) Report(err error) {
	reporter.hadErr = true
	reporter.log.Errorf("%s", err)
}

func (reporter *LogReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *LogReporter) Reset() {
	reporter.hadErr = false
}

// Collector keeps every reported error in order.
type Collector struct {
	errors []error
}

func NewCollector() *Collector {
	return &Collector{make([]error, 0)}
}

func (collector *Collector) Report(err error) {
	collector.errors = append(collector.errors, err)
}

func (collector *Collector) HadError() bool {
	return len(collector.errors) != 0
}

func (collector *Collector) Reset() {
	collector.errors = make([]error, 0)
}

// Errors returns the reported errors, oldest first.
func (collector *Collector) Errors() []error {
	return collector.errors
}

// Tee forwards every report to all of reporters.
func Tee(reporters ...Reporter) Reporter {
	return tee(reporters)
}

type tee []Reporter

func (t tee) Report(err error) {
	for _, r := range t {
		r.Report(err)
	}
}

func (t tee) HadError() bool {
	for _, r := range t {
		if r.HadError() {
			return true
		}
	}
	return false
}

func (t tee) Reset() {
	for _, r := range t {
		r.Reset()
	}
}
