package http

const RequestIDHeader = "X-Request-ID"
