//go:build chunkdebug

package chunk

const debugAssertions = true
