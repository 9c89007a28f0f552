package server

import (
	"testing"
	"time"
)

func TestWebLogger_BasicLogging(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-render-123", messageChan)

	testMessage := "Test log message"
	logger.Printf("%s\n", testMessage)

	select {
	case msg := <-messageChan:
		expectedMessage := testMessage + "\n"
		if msg.Message != expectedMessage {
			t.Errorf("Expected message '%s', got '%s'", expectedMessage, msg.Message)
		}
		if msg.Level != "info" {
			t.Errorf("Expected level 'info', got '%s'", msg.Level)
		}
		if time.Since(msg.Timestamp) > time.Second {
			t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
		}
	default:
		t.Error("Expected a console message to be buffered")
	}
}

func TestWebLogger_WarningLevel(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("test-render-warn", messageChan)

	logger.Printf("Warning: %s missing\n", "earthmap.jpg")

	msg := <-messageChan
	if msg.Level != "warning" {
		t.Errorf("Expected level 'warning', got '%s'", msg.Level)
	}
	if msg.Message != "Warning: earthmap.jpg missing\n" {
		t.Errorf("Unexpected formatted message '%s'", msg.Message)
	}
}

func TestWebLogger_ChannelFullDoesNotBlock(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("test-render-789", messageChan)

	logger.Printf("Message 1\n")
	logger.Printf("Message 2\n")
	logger.Printf("Message 3\n")

	messages := drainConsole(messageChan)
	if len(messages) != 1 || messages[0].Message != "Message 1\n" {
		t.Errorf("Expected only the first message to be kept, got %v", messages)
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	logger := NewWebLogger("test-render-nil", nil)

	// This should not panic
	logger.Printf("Test message with nil channel\n")
}

func TestDrainConsole_InOrder(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-render-456", messageChan)

	messages := []string{"Message 1\n", "Message 2\n", "Message 3\n"}
	for _, msg := range messages {
		logger.Printf("%s", msg)
	}

	received := drainConsole(messageChan)
	if len(received) != len(messages) {
		t.Fatalf("Expected %d messages, got %d", len(messages), len(received))
	}
	for i, expected := range messages {
		if received[i].Message != expected {
			t.Errorf("Message %d: expected '%s', got '%s'", i, expected, received[i].Message)
		}
	}

	if len(drainConsole(messageChan)) != 0 {
		t.Error("Expected an empty channel after draining")
	}
}
