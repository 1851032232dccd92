package skipnav

// Test hooks (kept separate so instrumentation doesn't clutter logic).
var (
	// afterMutationHook runs after put, removeNode and clear with the name of
	// the operation. It must not mutate the structure.
	afterMutationHook func(op string)
)
