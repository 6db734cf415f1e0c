package services

import (
	portsrepo "github.com/mecmec98/billingrestapi/internal/core/ports/repositories"
	portssvc "github.com/mecmec98/billingrestapi/internal/core/ports/services"
	"github.com/mecmec98/billingrestapi/pkg/config"
)

// NewServiceContainer wires every service over the repository provider.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:   NewLedgerService(repos.LedgerRepo),
		Receipt:  NewReceiptService(repos.ReceiptRepo),
		Machine:  NewMachineService(repos.MachineRepo),
		Consumer: NewConsumerService(repos.ConsumerRepo),
		User:     NewUserService(cfg, repos.UserRepo),
	}
}
