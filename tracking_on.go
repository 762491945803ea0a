//go:build !noleakcheck

package leakcheck

const trackingCompiledIn = true
