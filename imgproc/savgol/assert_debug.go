//go:build savgoldebug

package savgol

import "fmt"

const debugAssertions = true

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("savgol: "+format, args...))
	}
}
