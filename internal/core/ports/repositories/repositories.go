package repositories

// RepositoryProvider holds instances of all repositories for dependency
// injection into the service layer.
type RepositoryProvider struct {
	LedgerRepo   LedgerRepositoryWithTx
	ReceiptRepo  ReceiptRepositoryWithTx
	MachineRepo  MachineRepositoryFacade
	ConsumerRepo ConsumerRepositoryFacade
	UserRepo     UserRepositoryFacade
}
