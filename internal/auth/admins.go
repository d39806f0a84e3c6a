package auth

// AdminSet 可以编辑、删除新闻的用户名集合
type AdminSet map[string]struct{}

// NewAdminSet 由用户名列表创建管理员集合，忽略空名
func NewAdminSet(usernames ...string) AdminSet {
	s := make(AdminSet, len(usernames))
	for _, u := range usernames {
		if u != "" {
			s[u] = struct{}{}
		}
	}
	return s
}

// IsAdmin 用户名精确匹配
func (s AdminSet) IsAdmin(username string) bool {
	if username == "" {
		return false
	}
	_, ok := s[username]
	return ok
}
