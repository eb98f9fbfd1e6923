package logging

import "time"

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a duration field
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Any creates a field with any value
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Error creates an error field
func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// ComponentID creates a component id field
func ComponentID(id string) Field {
	return Field{Key: "component_id", Value: id}
}

// BlockID creates a block id field
func BlockID(id string) Field {
	return Field{Key: "block_id", Value: id}
}

// JointID creates a joint id field
func JointID(id string) Field {
	return Field{Key: "joint_id", Value: id}
}

// Order creates a hierarchy order field
func Order(order int) Field {
	return Field{Key: "order", Value: order}
}

// Count creates a count field
func Count(count int) Field {
	return Field{Key: "count", Value: count}
}

// Operation creates an operation name field
func Operation(op string) Field {
	return Field{Key: "operation", Value: op}
}

// Latency creates a latency field in milliseconds
func Latency(d time.Duration) Field {
	return Field{Key: "latency_ms", Value: float64(d.Microseconds()) / 1000.0}
}
