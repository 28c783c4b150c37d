package http

import "github.com/secmon-lab/codeseeker/pkg/domain/interfaces"

type UseCase interface {
	interfaces.SearchUsecases
}
