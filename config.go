package sealtag

type Config struct {
	Content map[string]ContentFunc // key is file extension
}
