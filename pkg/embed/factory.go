package embed

// DefaultEmbedFactory implements EmbedFactory interface
type DefaultEmbedFactory struct{}

// NewEmbedFactory creates a new DefaultEmbedFactory instance
func NewEmbedFactory() EmbedFactory {
	return &DefaultEmbedFactory{}
}

// CreateExpeditionEmbedBuilder creates an ExpeditionEmbedBuilder instance
func (f *DefaultEmbedFactory) CreateExpeditionEmbedBuilder() ExpeditionEmbedBuilder {
	return NewExpeditionEmbedBuilder()
}

// CreateErrorEmbedBuilder creates an ErrorEmbedBuilder instance
func (f *DefaultEmbedFactory) CreateErrorEmbedBuilder() ErrorEmbedBuilder {
	return NewErrorEmbedBuilder()
}

// Global factory instance for convenience
var globalFactory EmbedFactory = NewEmbedFactory()

// CreateExpeditionEmbeds creates an ExpeditionEmbedBuilder using the global factory
func CreateExpeditionEmbeds() ExpeditionEmbedBuilder {
	return globalFactory.CreateExpeditionEmbedBuilder()
}

// CreateErrorEmbeds creates an ErrorEmbedBuilder using the global factory
func CreateErrorEmbeds() ErrorEmbedBuilder {
	return globalFactory.CreateErrorEmbedBuilder()
}
