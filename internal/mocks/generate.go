package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/rawmatch --output domain/rawmatch --outpkg rawmatchmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/silver --output domain/silver --outpkg silvermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/stats --output domain/stats --outpkg statsmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/standing --output domain/standing --outpkg standingmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/leaderboard --output domain/leaderboard --outpkg leaderboardmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/dashboard --output domain/dashboard --outpkg dashboardmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/pipelinerun --output domain/pipelinerun --outpkg pipelinerunmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Locker --dir ../domain/pipelinerun --output domain/pipelinerun --outpkg pipelinerunmock --filename locker_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Lease --dir ../domain/pipelinerun --output domain/pipelinerun --outpkg pipelinerunmock --filename lease_mock.go
