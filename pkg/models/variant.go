package models

type Variant string

const (
	VariantOpenAI      Variant = "openai"
	VariantAzure       Variant = "azure"
	VariantOllama      Variant = "ollama"
	VariantHuggingFace Variant = "huggingface"
)

// Variants lists the built-in variants in the order they are reported.
var Variants = []Variant{
	VariantOpenAI,
	VariantAzure,
	VariantOllama,
	VariantHuggingFace,
}
