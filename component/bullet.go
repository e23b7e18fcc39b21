package component

// BulletComponent marks a boss-fired enemy bullet. Motion state lives in
// the KineticComponent; bullets integrate by elapsed time, unlike the
// fixed-step missiles and enemies.
type BulletComponent struct{}
