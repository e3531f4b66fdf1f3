//go:build !savgoldebug

package savgol

const debugAssertions = false

func assertf(bool, string, ...any) {}
