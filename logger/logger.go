package logger

import (
	"fmt"
	"time"

	"github.com/golangid/meetup/candihelper"
)

var debugMode bool

func init() {
	InitZap()
}

// SetDebugMode set local debug mode
func SetDebugMode(mode bool) {
	debugMode = mode
}

// LogWithDefer return defer func for status, used when loading resource in boot time
func LogWithDefer(str string) (deferFunc func()) {
	fmt.Printf("%s %s ", time.Now().Format(candihelper.TimeFormatLogger), str)
	return func() {
		if r := recover(); r != nil {
			fmt.Printf("\x1b[31;1mERROR: %v\x1b[0m\n", r)
			panic(r)
		}
		fmt.Println("\x1b[32;1mSUCCESS\x1b[0m")
	}
}

// LogYellow log with yellow color
func LogYellow(str string) {
	if debugMode {
		fmt.Printf("\x1b[33;2m%s\x1b[0m\n", str)
	}
}

// LogRed log with red color
func LogRed(str string) {
	if debugMode {
		fmt.Printf("\x1b[31;2m%s\x1b[0m\n", str)
	}
}

// LogGreen log with green color
func LogGreen(str string) {
	if debugMode {
		fmt.Printf("\x1b[32;2m%s\x1b[0m\n", str)
	}
}

// GreenColor wrap value with green terminal color
func GreenColor(v interface{}) string {
	return fmt.Sprintf("\x1b[32;1m%v\x1b[0m", v)
}

// YellowColor wrap value with yellow terminal color
func YellowColor(v interface{}) string {
	return fmt.Sprintf("\x1b[33;1m%v\x1b[0m", v)
}

// RedColor wrap value with red terminal color
func RedColor(v interface{}) string {
	return fmt.Sprintf("\x1b[31;1m%v\x1b[0m", v)
}

// CyanColor wrap value with cyan terminal color
func CyanColor(v interface{}) string {
	return fmt.Sprintf("\x1b[36;1m%v\x1b[0m", v)
}
