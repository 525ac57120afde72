package repoargs

type RepositoryName string

const (
	VirtualAccountRequestRepoName RepositoryName = "virtual_account_request"
	VirtualAccountRepoName        RepositoryName = "virtual_account"
	RunningNumberRepoName         RepositoryName = "running_number"
)
