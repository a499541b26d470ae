package users

// PushRecent добавить группу в конец списка последних без повторов, оставить не больше n
func PushRecent(recent []string, group string, n int) []string {
	ret := make([]string, 0, len(recent)+1)
	for _, g := range recent {
		if g != "" && g != group {
			ret = append(ret, g)
		}
	}
	if group != "" {
		ret = append(ret, group)
	}
	if n > 0 && len(ret) > n {
		ret = ret[len(ret)-n:]
	}
	return ret
}
