package vyatsu

import "github.com/notaneet/rasp43/model"

// Сдвоенные/строенные пары записывают так: первая строка с названием, следующие только
// с преподавателем и аудиторией. Протягиваем название на две следующие строки
func resolveContinuations(sessions []model.ClassSession) []model.ClassSession {
	for i := 0; i+2 < len(sessions); i++ {
		cur, next := sessions[i], sessions[i+1]
		if !cur.HasClass() || next.HasClass() {
			continue
		}
		if !next.HasTeacher() || !next.HasAuditorium() {
			continue
		}
		sessions[i+1] = next.WithDiscipline(cur.DisciplineName())
		sessions[i+2] = sessions[i+2].WithDiscipline(cur.DisciplineName())
	}
	return sessions
}
