package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name TeamProvider --dir ../usecase --output usecase --outpkg teamprovidermock --filename team_provider_mock.go
