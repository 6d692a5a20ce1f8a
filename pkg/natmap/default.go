package natmap

const (
	DefaultThreads = 25

	// pre-filled ranges shown in usage examples
	ExampleDMZRange      = "192.168.1.0/26"
	ExampleInternalRange = "10.188.65.0/26"
)
