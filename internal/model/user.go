package model

const (
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Ctime        int64  `json:"ctime"`
	Mtime        int64  `json:"mtime"`
}

func ValidRole(role string) bool {
	return role == RoleCandidate || role == RoleRecruiter
}
