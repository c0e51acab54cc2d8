package editor

import "drone-site-server/internal/domain"

// Mock logger used by editor package tests.
type MockEditorLogger struct{}

func NewMockEditorLogger() domain.Logger {
	return &MockEditorLogger{}
}

func (l *MockEditorLogger) Info(msg string, fields ...interface{})             {}
func (l *MockEditorLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockEditorLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockEditorLogger) Warn(msg string, fields ...interface{})             {}
