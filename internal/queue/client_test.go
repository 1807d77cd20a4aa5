package queue

import (
	"encoding/json"
	"net"
	"strconv"
	"testing"

	"github.com/fresh-groceries/internal/config"
	"github.com/fresh-groceries/internal/constants"

	"github.com/alicebob/miniredis/v2"
)

func TestDisabledClientIsNoop(t *testing.T) {
	client, err := NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if client.Enabled() {
		t.Fatalf("client should be disabled")
	}
	if err := client.EnqueueOrderCreated(OrderCreatedPayload{OrderID: 1}); err != nil {
		t.Fatalf("disabled enqueue should be noop, got %v", err)
	}
	if err := client.EnqueueOrderStatusChanged(OrderStatusChangedPayload{OrderID: 1, To: constants.OrderStatusAccepted}); err != nil {
		t.Fatalf("disabled enqueue should be noop, got %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close disabled client failed: %v", err)
	}

	var nilClient *Client
	if nilClient.Enabled() || nilClient.Close() != nil {
		t.Fatalf("nil client should be disabled and closable")
	}
}

func queueConfigFor(t *testing.T, addr string) *config.QueueConfig {
	t.Helper()
	host, rawPort, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("split addr failed: %v", err)
	}
	port, err := strconv.Atoi(rawPort)
	if err != nil {
		t.Fatalf("parse port failed: %v", err)
	}
	return &config.QueueConfig{Enabled: true, Host: host, Port: port}
}

func TestNewClientReachableRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewClient(queueConfigFor(t, mr.Addr()))
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	defer client.Close()
	if !client.Enabled() {
		t.Fatalf("client should be enabled when redis answers")
	}
	if err := client.EnqueueOrderCreated(OrderCreatedPayload{OrderID: 7}); err != nil {
		t.Fatalf("enqueue order created failed: %v", err)
	}
	// 重复投递按任务 ID 去重
	if err := client.EnqueueOrderCreated(OrderCreatedPayload{OrderID: 7}); err != nil {
		t.Fatalf("duplicate enqueue should be dropped, got %v", err)
	}
}

func TestNewClientUnreachableRedisFallsBack(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	addr := listener.Addr().String()
	_ = listener.Close()

	client, err := NewClient(queueConfigFor(t, addr))
	if err == nil {
		t.Fatalf("expected ping error for unreachable redis")
	}
	if client == nil || client.Enabled() {
		t.Fatalf("expected disabled fallback client")
	}
	if err := client.EnqueueOrderStatusChanged(OrderStatusChangedPayload{OrderID: 1, To: constants.OrderStatusAccepted}); err != nil {
		t.Fatalf("fallback enqueue should be noop, got %v", err)
	}
}

func TestBuildServerConfig(t *testing.T) {
	opt, cfg := BuildServerConfig(&config.QueueConfig{Host: " redis ", Port: 6380, DB: 2})
	if opt.Addr != "redis:6380" || opt.DB != 2 || opt.DialTimeout != dialTimeout {
		t.Fatalf("unexpected redis opt: %+v", opt)
	}
	if cfg.Concurrency != 10 {
		t.Fatalf("default concurrency want 10 got %d", cfg.Concurrency)
	}
	if cfg.Queues[DefaultQueue] != 1 || cfg.Queues[CriticalQueue] != 1 {
		t.Fatalf("unexpected default queues: %+v", cfg.Queues)
	}

	opt, cfg = BuildServerConfig(nil)
	if opt.Addr != "127.0.0.1:6379" || cfg.Logger == nil || cfg.ErrorHandler == nil {
		t.Fatalf("unexpected nil-config server settings: %+v", opt)
	}
}

func TestOrderStatusChangedTask(t *testing.T) {
	task, err := NewOrderStatusChangedTask(OrderStatusChangedPayload{
		OrderID: 9,
		From:    constants.OrderStatusCreated,
		To:      constants.OrderStatusAccepted,
	})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if task.Type() != TaskOrderStatusChanged {
		t.Fatalf("unexpected task type %s", task.Type())
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(task.Payload(), &decoded); err != nil {
		t.Fatalf("decode payload failed: %v", err)
	}
	if decoded["to"] != "accepted" || decoded["from"] != "created" {
		t.Fatalf("unexpected payload %s", task.Payload())
	}
	if orderCreatedTaskID(9) != "order:created:9" {
		t.Fatalf("unexpected task id %s", orderCreatedTaskID(9))
	}
}
