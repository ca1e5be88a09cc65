// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest contains small generic slice helpers shared by the console
// renderers and prompt models.
package slicest

// Reduce

// Reduce reduces slice S to type U.
func Reduce[T any, S ~[]T, U any](s S, fn func(T, U) U) U {
	return ReduceI(s, func(_ int, t T, u U) U {
		return fn(t, u)
	})
}

// ReduceI reduces slice S to type U.
// - I: Provides index to callback.
func ReduceI[T any, S ~[]T, U any](s S, fn func(int, T, U) U) U {
	var acc U
	for i, t := range s {
		acc = fn(i, t, acc)
	}
	return acc
}

// Map

func MapXI[T, U any, S ~[]T](s S, fn func(int, T) (U, error)) ([]U, error) {
	result := make([]U, len(s))
	for i, v := range s {
		out, err := fn(i, v)
		if err != nil {
			return nil, err
		}
		result[i] = out
	}
	return result, nil
}

func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result, _ := MapXI(s, func(i int, t T) (U, error) {
		return fn(i, t), nil
	})
	return result
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	result, _ := MapXI(s, func(_ int, t T) (U, error) {
		return fn(t), nil
	})
	return result
}

// Filter

// FilterI keeps the elements for which fn reports true, preserving order.
// - I: Provides index to callback.
func FilterI[T any, S ~[]T](s S, fn func(int, T) bool) S {
	result := make(S, 0, len(s))
	for i, t := range s {
		if fn(i, t) {
			result = append(result, t)
		}
	}
	return result
}

// Filter keeps the elements for which fn reports true, preserving order.
func Filter[T any, S ~[]T](s S, fn func(T) bool) S {
	return FilterI(s, func(_ int, t T) bool {
		return fn(t)
	})
}
