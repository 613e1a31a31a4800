// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_TrimsIdentifiersButNotPasswords(t *testing.T) {
	reg := RegisterRequest{Username: " sam ", Email: "\tsam@example.com\n", Password: " secret1 "}.Normalize()
	assert.Equal(t, RegisterRequest{Username: "sam", Email: "sam@example.com", Password: " secret1 "}, reg)

	login := LoginRequest{Username: " sam ", Password: " secret1 "}.Normalize()
	assert.Equal(t, LoginRequest{Username: "sam", Password: " secret1 "}, login)

	upd := UpdateUserRequest{Username: "  ", Email: " new@example.com "}.Normalize()
	assert.Equal(t, UpdateUserRequest{Email: "new@example.com"}, upd)
}
