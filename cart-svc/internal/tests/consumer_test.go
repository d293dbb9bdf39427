package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"overcooked-cart/cart-svc/internal/domain"
	"overcooked-cart/cart-svc/internal/mocks"
	"overcooked-cart/cart-svc/internal/service"
)

func TestConsumer_ProcessOrderEvent(t *testing.T) {
	tests := []struct {
		name         string
		inputMessage domain.OrderEvent
		setupMock    func(*mocks.CartServiceInterface)
	}{
		{
			name:         "submitted order clears cart",
			inputMessage: domain.OrderEvent{Type: "order_submitted", SessionID: "abc", OrderID: 42},
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("Clear", mock.Anything, "abc").Return(domain.CartView{SessionID: "abc"}, nil).Once()
			},
		},
		{
			name:         "clear error is logged",
			inputMessage: domain.OrderEvent{Type: "order_submitted", SessionID: "abc", OrderID: 42},
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("Clear", mock.Anything, "abc").Return(domain.CartView{}, assert.AnError).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			carts := mocks.NewCartServiceInterface(t)
			testCase.setupMock(carts)

			consumer := service.NewConsumer(nil, carts, zaptest.NewLogger(t))

			consumer.ProcessOrderEvent(context.Background(), testCase.inputMessage)
			carts.AssertExpectations(t)
		})
	}
}

func TestConsumer_IgnoresOtherMessages(t *testing.T) {
	tests := []struct {
		name    string
		message domain.OrderEvent
	}{
		{name: "unknown type", message: domain.OrderEvent{Type: "order_paid", SessionID: "abc"}},
		{name: "missing session", message: domain.OrderEvent{Type: "order_submitted", OrderID: 42}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			carts := mocks.NewCartServiceInterface(t)
			consumer := &service.Consumer{Carts: carts}

			consumer.ProcessOrderEvent(context.Background(), testCase.message)
			carts.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
		})
	}
}
