package asset

// DefaultConfig returns the default TOML tuning for the arena
const DefaultConfig = `
# === Arena ===
[arena]
width = 10.0
height = 10.0
wall_thickness = 0.2

# === Player ===
[player]
health = 100.0
speed = 10.0
acceleration = 50.0
radius = 0.5
invincibility = "1s"

[player.dash]
max_distance = 20.0
speed = 40.0
width = 1.0
damage = 10.0

# === Population ===
# Each unlocked room spawns base + per_room * rooms enemies, picked from pool
[spawn]
base = 1
per_room = 1
pool = ["crawler", "crawler", "shooter", "pacman", "helicopter", "idle"]

# === Enemy catalog ===
[enemies.idle]
health = 10.0
damage = 5.0
speed = 0.0
acceleration = 0.0
radius = 0.6
ai = "idle"

[enemies.crawler]
health = 10.0
damage = 10.0
speed = 2.0
acceleration = 10.0
radius = 0.4
ai = "crawler"

[enemies.shooter]
health = 15.0
damage = 5.0
speed = 1.5
acceleration = 5.0
width = 0.8
height = 0.8
ai = "shooter"
preferred_distance = 6.0
charge = "2s"
bullet = "bullet"

[enemies.bullet]
health = 1.0
damage = 5.0
speed = 15.0
acceleration = 100.0
radius = 0.2
ai = "bullet"

[enemies.pacman]
health = 20.0
damage = 10.0
speed = 3.0
acceleration = 20.0
radius = 0.5
ai = "pacman"

[enemies.helicopter]
health = 30.0
damage = 10.0
speed = 2.5
acceleration = 8.0
width = 1.5
height = 0.8
ai = "helicopter"
`
