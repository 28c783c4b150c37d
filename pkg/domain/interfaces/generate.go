package interfaces

//go:generate go run github.com/matryer/moq@v0.5.3 -pkg mock -out ../mock/github.go . GitHubClient
//go:generate go run github.com/matryer/moq@v0.5.3 -pkg mock -out ../mock/usecase.go . SearchUsecases
