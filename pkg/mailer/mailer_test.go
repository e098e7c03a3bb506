package mailer_test

import (
	"bufio"
	"context"
	"net"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"countervalidator/pkg/logger"
	"countervalidator/pkg/mailer"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)

	os.Exit(m.Run())
}

func TestBuildMessage(t *testing.T) {
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	msg := mailer.BuildMessage("noreply@example.com", []string{"a@example.com", "b@example.com"},
		"Validation failed\nnow", "line 1\nline 2", now)

	require.Contains(t, msg, "From: noreply@example.com\r\n")
	require.Contains(t, msg, "To: a@example.com, b@example.com\r\n")
	require.Contains(t, msg, "Subject: Validation failed now\r\n")
	require.Contains(t, msg, "Content-Type: text/plain; charset=UTF-8\r\n")
	require.True(t, strings.HasSuffix(msg, "\r\n\r\nline 1\r\nline 2"))
}

func TestNew_withoutHost(t *testing.T) {
	m := mailer.New(mailer.Options{})
	require.IsType(t, mailer.LogMailer{}, m)
	require.NoError(t, m.Send(context.Background(), []string{"a@example.com"}, "s", "b"))
}

// fakeSMTP accepts one session and records the DATA payload.
func fakeSMTP(t *testing.T) (int, <-chan string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	data := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()
		r := bufio.NewReader(conn)
		write := func(s string) { _, _ = conn.Write([]byte(s + "\r\n")) }
		write("220 fake")
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			cmd := strings.ToUpper(strings.TrimSpace(line))
			switch {
			case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
				write("250 fake")
			case strings.HasPrefix(cmd, "DATA"):
				write("354 go ahead")
				var body strings.Builder
				for {
					l, err := r.ReadString('\n')
					if err != nil {
						return
					}
					if l == ".\r\n" {
						break
					}
					body.WriteString(l)
				}
				data <- body.String()
				write("250 ok")
			case strings.HasPrefix(cmd, "QUIT"):
				write("221 bye")

				return
			default:
				write("250 ok")
			}
		}
	}()

	return ln.Addr().(*net.TCPAddr).Port, data
}

func TestSMTP_Send(t *testing.T) {
	port, data := fakeSMTP(t)
	m := mailer.New(mailer.Options{Host: "127.0.0.1", Port: port, From: "noreply@example.com", Timeout: time.Second})

	err := m.Send(context.Background(), []string{"admin@example.com"}, "Validation failed", "Validation x failed: boom")
	require.NoError(t, err)

	select {
	case got := <-data:
		require.Contains(t, got, "Subject: Validation failed")
		require.Contains(t, got, "Validation x failed: boom")
	case <-time.After(5 * time.Second):
		t.Fatal("no message received on port " + strconv.Itoa(port))
	}
}
