//go:build leakcheck_strict

package leakcheck

const strictBuild = true
