package kvrepo_test

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	kvrepo "bookjam/repository/kv"

	"github.com/stretchr/testify/require"
)

// fakeRedis speaks just enough RESP2 for GET and SET with expiry.
type fakeRedis struct {
	ln   net.Listener
	mu   sync.Mutex
	data map[string]string
	ttl  map[string]time.Duration
}

func startFakeRedis(t *testing.T) *fakeRedis {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	f := &fakeRedis{ln: ln, data: map[string]string{}, ttl: map[string]time.Duration{}}
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go f.serve(conn)
		}
	}()
	return f
}

func (f *fakeRedis) addr() string { return f.ln.Addr().String() }

func (f *fakeRedis) expiry(key string) (time.Duration, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.ttl[key]
	return d, ok
}

func (f *fakeRedis) serve(conn net.Conn) {
	defer conn.Close()
	r := bufio.NewReader(conn)
	for {
		args, err := readCommand(r)
		if err != nil {
			return
		}
		if _, err := io.WriteString(conn, f.reply(args)); err != nil {
			return
		}
	}
}

func (f *fakeRedis) reply(args []string) string {
	if len(args) == 0 {
		return "-ERR empty command\r\n"
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	switch strings.ToUpper(args[0]) {
	case "HELLO":
		return "-ERR unknown command 'HELLO'\r\n"
	case "PING":
		return "+PONG\r\n"
	case "GET":
		v, ok := f.data[args[1]]
		if !ok {
			return "$-1\r\n"
		}
		return fmt.Sprintf("$%d\r\n%s\r\n", len(v), v)
	case "SET":
		key := args[1]
		f.data[key] = args[2]
		delete(f.ttl, key)
		for i := 3; i+1 < len(args); i += 2 {
			n, _ := strconv.Atoi(args[i+1])
			switch strings.ToUpper(args[i]) {
			case "EX":
				f.ttl[key] = time.Duration(n) * time.Second
			case "PX":
				f.ttl[key] = time.Duration(n) * time.Millisecond
			}
		}
		return "+OK\r\n"
	default:
		return "+OK\r\n"
	}
}

func readCommand(r *bufio.Reader) ([]string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(line, "*") {
		return nil, fmt.Errorf("unexpected line %q", line)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line[1:]))
	if err != nil {
		return nil, err
	}
	args := make([]string, 0, n)
	for i := 0; i < n; i++ {
		head, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		size, err := strconv.Atoi(strings.TrimSpace(head[1:]))
		if err != nil {
			return nil, err
		}
		buf := make([]byte, size+2)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		args = append(args, string(buf[:size]))
	}
	return args, nil
}

func TestRedis_GetSet(t *testing.T) {
	ctx := context.Background()
	f := startFakeRedis(t)
	client, err := kvrepo.DialRedis(ctx, f.addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	r := kvrepo.NewRedis(client, 0)
	_, err = r.Get(ctx, "bookjam:cart")
	require.ErrorIs(t, err, kvrepo.ErrNotFound)

	require.NoError(t, r.Set(ctx, "bookjam:cart", `{"items":[]}`))
	v, err := r.Get(ctx, "bookjam:cart")
	require.NoError(t, err)
	require.Equal(t, `{"items":[]}`, v)

	_, ok := f.expiry("bookjam:cart")
	require.False(t, ok, "zero ttl stores without expiry")
}

func TestRedis_TTL(t *testing.T) {
	ctx := context.Background()
	f := startFakeRedis(t)
	client, err := kvrepo.DialRedis(ctx, f.addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, kvrepo.NewRedis(client, 90*time.Second).Set(ctx, "seconds", "v"))
	d, ok := f.expiry("seconds")
	require.True(t, ok)
	require.Equal(t, 90*time.Second, d)

	require.NoError(t, kvrepo.NewRedis(client, 1500*time.Millisecond).Set(ctx, "millis", "v"))
	d, ok = f.expiry("millis")
	require.True(t, ok)
	require.Equal(t, 1500*time.Millisecond, d)

	require.NoError(t, kvrepo.NewRedis(client, -time.Minute).Set(ctx, "forever", "v"))
	_, ok = f.expiry("forever")
	require.False(t, ok)
}

func TestDialRedis_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = kvrepo.DialRedis(ctx, addr, "", 0)
	require.Error(t, err)
}
