package utils

import "context"

func GetString(ctx context.Context, key any) (string, bool) {
	s, ok := ctx.Value(key).(string)
	return s, ok
}

func GetInt64(ctx context.Context, key any) (int64, bool) {
	n, ok := ctx.Value(key).(int64)
	return n, ok
}
