//go:build !release

package vkstart

const validationByDefault = true
