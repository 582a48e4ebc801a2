package iterators

// consterr is an error implementation that allows error values to be declared with the const keyword.
type consterr string

func (err consterr) Error() string { return string(err) }

// ErrNotFound is returned by terminal helpers when the iterator had no element to give.
const ErrNotFound consterr = "iterators: not found"
