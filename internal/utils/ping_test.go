package utils

import (
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingService(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)

	assert.NoError(t, PingLocalPort(port))
	assert.NoError(t, PingService("http://127.0.0.1:"+port+"/health", time.Second))

	require.NoError(t, ln.Close())
	assert.Error(t, PingLocalPort(port))

	assert.ErrorContains(t, PingService("://bad", time.Second), "invalid URL")
}
