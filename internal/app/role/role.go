package role

type Role int

const (
	Guest  Role = iota // 0
	Client             // 1
	Admin              // 2
)

func (r Role) String() string {
	switch r {
	case Client:
		return "client"
	case Admin:
		return "admin"
	}
	return "guest"
}
