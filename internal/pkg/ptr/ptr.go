package ptr

import "time"

func To[T any](v T) *T {
	return &v
}

// UnixSeconds converts an optional timestamp to epoch seconds, keeping nil as nil.
func UnixSeconds(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	return To(t.Unix())
}
