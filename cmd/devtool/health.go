package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	healthTimeout  = 5 * time.Second
	slowHealthMark = time.Second
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check API liveness and readiness"
}

func (c *HealthCheckCommand) Run(args []string) error {
	baseURL, _ := apiTarget()
	if len(args) > 0 {
		baseURL = args[0]
	}
	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		body, err := probe(baseURL + path)
		if err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}
		if d := time.Since(start); d > slowHealthMark {
			PrintWarning("%s slow response (%v): %s", path, d, body)
		} else {
			PrintSuccess("%s ok (%v): %s", path, d, body)
		}
	}
	return nil
}

func probe(url string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}
	return string(body), nil
}
