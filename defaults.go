package ministats

import "time"

// DefaultPath is the default path whose filesystem is sampled.
var DefaultPath = "/"

// DefaultInterval is the default sampling interval for CPU and network.
var DefaultInterval = time.Second

// MaxInterval is the longest sampling interval accepted.
var MaxInterval = time.Minute
