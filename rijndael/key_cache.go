package rijndael

import (
	"github.com/sasha-s/go-deadlock"
)

// ScheduleCache хранит развернутые таблицы ключей, чтобы не пересчитывать
// расписание для одного и того же ключа. Таблицы неизменяемы и раздаются по ссылке.
type ScheduleCache struct {
	mutex    deadlock.RWMutex
	schedule IKeySchedule
	tables   map[Key]*RoundKeyTable
}

// NewScheduleCache создает пустой кэш
func NewScheduleCache() *ScheduleCache {
	return &ScheduleCache{
		schedule: RijndaelKeySchedule{},
		tables:   map[Key]*RoundKeyTable{},
	}
}

// Get возвращает таблицу для ключа, при необходимости разворачивая его
func (c *ScheduleCache) Get(key Key) *RoundKeyTable {
	c.mutex.RLock()
	table, ok := c.tables[key]
	c.mutex.RUnlock()
	if ok {
		return table
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if table, ok := c.tables[key]; ok {
		return table
	}
	table = c.schedule.GenerateRoundKeys(key)
	c.tables[key] = table
	return table
}

// Len возвращает количество закэшированных ключей
func (c *ScheduleCache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.tables)
}

// Forget удаляет ключ из кэша
func (c *ScheduleCache) Forget(key Key) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.tables, key)
}
