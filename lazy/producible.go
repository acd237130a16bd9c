package lazy

// Producible is implemented by every lazy.Value[T] regardless of T: it
// exposes the work (if any) responsible for eventually fulfilling it. The
// scheduler type-asserts a Dependency to Producible to decide whether
// there is anything to schedule before awaiting it (a constant has no
// producer and needs no scheduling; a placeholder or reference reports the
// work that assigns or resolves it, even once it is done).
type Producible interface {
	GetWork() Producer
}
