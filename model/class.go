package model

import (
	"strings"

	"github.com/notaneet/rasp43/utils"
)

// ClassSession одна пара (одна строка блока группы)
type ClassSession struct {
	Time        string   `json:"time"`                  //Время по сетке звонков, пусто если пара вне сетки
	Discipline  *string  `json:"discipline"`            //Предмет, nil - пары нет. Несколько строк - подгруппы
	TypeOfClass string   `json:"type_of_class"`         //Вид занятия (лк, пр...)
	Teachers    []string `json:"teachers,omitempty"`    //Преподаватели, по одному на подгруппу
	Auditoriums []string `json:"auditoriums,omitempty"` //Аудитории, по одной на подгруппу
}

// Subgroup одна из параллельных подгрупп пары
type Subgroup struct {
	Discipline string
	Teacher    string
	Auditorium string
}

// NoDiscipline так pandas пишет пустую клетку, в выгрузках встречается как текст
const NoDiscipline = "nan"

// NewDiscipline пустая клетка или "nan" - пары нет
func NewDiscipline(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, NoDiscipline) {
		return nil
	}
	return &raw
}

// HasClass есть ли в слоте занятие
func (s ClassSession) HasClass() bool {
	return s.Discipline != nil && !strings.EqualFold(strings.TrimSpace(*s.Discipline), NoDiscipline)
}

// DisciplineName название предмета или ""
func (s ClassSession) DisciplineName() string {
	if s.Discipline == nil {
		return ""
	}
	return *s.Discipline
}

// HasTeacher указан ли хоть один преподаватель
func (s ClassSession) HasTeacher() bool {
	return utils.AnyNotEmpty(s.Teachers)
}

// HasAuditorium указана ли хоть одна аудитория
func (s ClassSession) HasAuditorium() bool {
	return utils.AnyNotEmpty(s.Auditoriums)
}

// Subgroups строка предмета k в паре с преподавателем k и аудиторией k
func (s ClassSession) Subgroups() []Subgroup {
	if s.Discipline == nil {
		return nil
	}
	lines := utils.SplitLines(*s.Discipline)
	ret := make([]Subgroup, 0, len(lines))
	for k, line := range lines {
		ret = append(ret, Subgroup{
			Discipline: line,
			Teacher:    utils.GetOrString(s.Teachers, k, ""),
			Auditorium: utils.GetOrString(s.Auditoriums, k, ""),
		})
	}
	return ret
}

// WithDiscipline копия пары с другим предметом
func (s ClassSession) WithDiscipline(discipline string) ClassSession {
	s.Discipline = &discipline
	return s
}
