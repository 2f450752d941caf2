package stripe

import "errors"

var (
	// ErrNotConfigured возвращается, если не задан секретный ключ платежного провайдера
	ErrNotConfigured = errors.New("stripe client: secret key is not configured")

	// ErrWebhookNotConfigured возвращается, если не задан секрет подписи вебхуков
	ErrWebhookNotConfigured = errors.New("stripe client: webhook secret is not configured")

	// ErrInvalidSignature возвращается, если подпись вебхука не прошла проверку
	ErrInvalidSignature = errors.New("stripe client: invalid webhook signature")

	// ErrInvalidPayload возвращается, если тело события не удалось разобрать
	ErrInvalidPayload = errors.New("stripe client: invalid event payload")

	// ErrNoCharge возвращается, если у оплаченной сессии нет списания
	ErrNoCharge = errors.New("stripe client: checkout session has no charge")

	// ErrProvider возвращается при ошибке вызова API провайдера
	ErrProvider = errors.New("stripe client: provider request failed")
)
