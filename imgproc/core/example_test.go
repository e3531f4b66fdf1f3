package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-scan/imgproc/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(core.WithWorkers(4))

	fmt.Printf("workers=%d\n", cfg.Workers)

	// Output:
	// workers=4
}

func ExampleClampByte() {
	fmt.Println(core.ClampByte(-12.3), core.ClampByte(99.5), core.ClampByte(300))

	// Output:
	// 0 100 255
}
