/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package field

import (
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptional[T comparable](t *testing.T, set func(T) *T, get func(*T, T) T) {
	t.Helper()
	var value, defaultValue T
	require.NoError(t, faker.FakeData(&value))
	require.NoError(t, faker.FakeData(&defaultValue))

	assert.Equal(t, defaultValue, get(nil, defaultValue))
	ptr := set(value)
	require.NotNil(t, ptr)
	assert.Equal(t, value, *ptr)
	assert.Equal(t, value, get(ptr, defaultValue))
	assert.Equal(t, value, OptionalOrZero(ptr))
	assert.Zero(t, OptionalOrZero[T](nil))
}

func TestOptionalField(t *testing.T) {
	t.Run("Int", func(t *testing.T) { testOptional(t, ToOptionalInt, OptionalInt) })
	t.Run("Int8", func(t *testing.T) { testOptional(t, ToOptionalInt8, OptionalInt8) })
	t.Run("Int16", func(t *testing.T) { testOptional(t, ToOptionalInt16, OptionalInt16) })
	t.Run("Int32", func(t *testing.T) { testOptional(t, ToOptionalInt32, OptionalInt32) })
	t.Run("Int64", func(t *testing.T) { testOptional(t, ToOptionalInt64, OptionalInt64) })
	t.Run("UInt", func(t *testing.T) { testOptional(t, ToOptionalUint, OptionalUint) })
	t.Run("UInt8", func(t *testing.T) { testOptional(t, ToOptionalUint8, OptionalUint8) })
	t.Run("UInt16", func(t *testing.T) { testOptional(t, ToOptionalUint16, OptionalUint16) })
	t.Run("UInt32", func(t *testing.T) { testOptional(t, ToOptionalUint32, OptionalUint32) })
	t.Run("UInt64", func(t *testing.T) { testOptional(t, ToOptionalUint64, OptionalUint64) })
	t.Run("Float32", func(t *testing.T) { testOptional(t, ToOptionalFloat32, OptionalFloat32) })
	t.Run("Float64", func(t *testing.T) { testOptional(t, ToOptionalFloat64, OptionalFloat64) })
	t.Run("String", func(t *testing.T) { testOptional(t, ToOptionalString, OptionalString) })
	t.Run("Duration", func(t *testing.T) { testOptional(t, ToOptionalDuration, OptionalDuration) })
}

func TestOptionalBool(t *testing.T) {
	assert.True(t, OptionalBool(nil, true))
	assert.False(t, OptionalBool(ToOptionalBool(false), true))
	assert.True(t, OptionalBool(ToOptionalBool(true), false))
}

func TestToOptionalCopies(t *testing.T) {
	v := 5 * time.Second
	ptr := ToOptional(v)
	v = time.Minute
	assert.Equal(t, 5*time.Second, *ptr)
	assert.True(t, IsSet(ptr))
	assert.False(t, IsSet[int](nil))
	assert.Equal(t, "fallback", Optional(nil, "fallback"))
}
