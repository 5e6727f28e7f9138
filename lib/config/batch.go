package config

import "runtime"

// batch processing settings
type BatchConfig struct {
	// number of records processed concurrently
	Workers int
}

// default batch settings
var DefaultBatchConfig = BatchConfig{
	Workers: runtime.NumCPU(),
}
