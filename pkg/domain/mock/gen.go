package mock

//go:generate moq -out usecase.go -pkg mock ../interfaces UseCases
//go:generate moq -out infra.go -pkg mock ../interfaces Environment Policy
