package main

import (
	"fmt"
	"io"
	"os"
)

var logOutput io.Writer = os.Stderr

type logger bool

func (l logger) Logf(format string, a ...interface{}) {
	if !l {
		return
	}
	fmt.Fprintf(logOutput, format+"\n", a...)
}

func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	logger(rcc.verbose).Logf(format, a...)
}

func (rcc *rootCmdConfig) Logger() logger {
	return logger(rcc.verbose)
}
