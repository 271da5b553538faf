/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package field provides optional values as pointers: nil stands for an absent value.
// It was inspired by the kubernetes package https://pkg.go.dev/k8s.io/utils/pointer.
package field

import "time"

// ToOptional returns a pointer to a copy of v.
func ToOptional[T any](v T) *T {
	return &v
}

// Optional returns the value of an optional field or else
// returns defaultValue.
func Optional[T any](ptr *T, defaultValue T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// OptionalOrZero returns the value of an optional field or the zero value of T.
func OptionalOrZero[T any](ptr *T) (v T) {
	if ptr != nil {
		v = *ptr
	}
	return
}

// IsSet states whether an optional field holds a value.
func IsSet[T any](ptr *T) bool {
	return ptr != nil
}

// ToOptionalInt returns a pointer to an int.
func ToOptionalInt(v int) *int {
	return ToOptional(v)
}

// OptionalInt returns the value of an optional field or else returns defaultValue.
func OptionalInt(ptr *int, defaultValue int) int {
	return Optional(ptr, defaultValue)
}

// ToOptionalInt8 returns a pointer to an int8.
func ToOptionalInt8(v int8) *int8 {
	return ToOptional(v)
}

// OptionalInt8 returns the value of an optional field or else returns defaultValue.
func OptionalInt8(ptr *int8, defaultValue int8) int8 {
	return Optional(ptr, defaultValue)
}

// ToOptionalInt16 returns a pointer to an int16.
func ToOptionalInt16(v int16) *int16 {
	return ToOptional(v)
}

// OptionalInt16 returns the value of an optional field or else returns defaultValue.
func OptionalInt16(ptr *int16, defaultValue int16) int16 {
	return Optional(ptr, defaultValue)
}

// ToOptionalInt32 returns a pointer to an int32.
func ToOptionalInt32(v int32) *int32 {
	return ToOptional(v)
}

// OptionalInt32 returns the value of an optional field or else returns defaultValue.
func OptionalInt32(ptr *int32, defaultValue int32) int32 {
	return Optional(ptr, defaultValue)
}

// ToOptionalInt64 returns a pointer to an int64.
func ToOptionalInt64(v int64) *int64 {
	return ToOptional(v)
}

// OptionalInt64 returns the value of an optional field or else returns defaultValue.
func OptionalInt64(ptr *int64, defaultValue int64) int64 {
	return Optional(ptr, defaultValue)
}

// ToOptionalUint returns a pointer to an uint.
func ToOptionalUint(v uint) *uint {
	return ToOptional(v)
}

// OptionalUint returns the value of an optional field or else returns defaultValue.
func OptionalUint(ptr *uint, defaultValue uint) uint {
	return Optional(ptr, defaultValue)
}

// ToOptionalUint8 returns a pointer to an uint8.
func ToOptionalUint8(v uint8) *uint8 {
	return ToOptional(v)
}

// OptionalUint8 returns the value of an optional field or else returns defaultValue.
func OptionalUint8(ptr *uint8, defaultValue uint8) uint8 {
	return Optional(ptr, defaultValue)
}

// ToOptionalUint16 returns a pointer to an uint16.
func ToOptionalUint16(v uint16) *uint16 {
	return ToOptional(v)
}

// OptionalUint16 returns the value of an optional field or else returns defaultValue.
func OptionalUint16(ptr *uint16, defaultValue uint16) uint16 {
	return Optional(ptr, defaultValue)
}

// ToOptionalUint32 returns a pointer to an uint32.
func ToOptionalUint32(v uint32) *uint32 {
	return ToOptional(v)
}

// OptionalUint32 returns the value of an optional field or else returns defaultValue.
func OptionalUint32(ptr *uint32, defaultValue uint32) uint32 {
	return Optional(ptr, defaultValue)
}

// ToOptionalUint64 returns a pointer to an uint64.
func ToOptionalUint64(v uint64) *uint64 {
	return ToOptional(v)
}

// OptionalUint64 returns the value of an optional field or else returns defaultValue.
func OptionalUint64(ptr *uint64, defaultValue uint64) uint64 {
	return Optional(ptr, defaultValue)
}

// ToOptionalFloat32 returns a pointer to a float32.
func ToOptionalFloat32(v float32) *float32 {
	return ToOptional(v)
}

// OptionalFloat32 returns the value of an optional field or else returns defaultValue.
func OptionalFloat32(ptr *float32, defaultValue float32) float32 {
	return Optional(ptr, defaultValue)
}

// ToOptionalFloat64 returns a pointer to a float64.
func ToOptionalFloat64(v float64) *float64 {
	return ToOptional(v)
}

// OptionalFloat64 returns the value of an optional field or else returns defaultValue.
func OptionalFloat64(ptr *float64, defaultValue float64) float64 {
	return Optional(ptr, defaultValue)
}

// ToOptionalBool returns a pointer to a bool.
func ToOptionalBool(v bool) *bool {
	return ToOptional(v)
}

// OptionalBool returns the value of an optional field or else returns defaultValue.
func OptionalBool(ptr *bool, defaultValue bool) bool {
	return Optional(ptr, defaultValue)
}

// ToOptionalString returns a pointer to a string.
func ToOptionalString(v string) *string {
	return ToOptional(v)
}

// OptionalString returns the value of an optional field or else returns defaultValue.
func OptionalString(ptr *string, defaultValue string) string {
	return Optional(ptr, defaultValue)
}

// ToOptionalDuration returns a pointer to a time.Duration.
func ToOptionalDuration(v time.Duration) *time.Duration {
	return ToOptional(v)
}

// OptionalDuration returns the value of an optional field or else returns defaultValue.
func OptionalDuration(ptr *time.Duration, defaultValue time.Duration) time.Duration {
	return Optional(ptr, defaultValue)
}
